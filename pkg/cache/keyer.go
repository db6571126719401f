package cache

// LayoutKeyOpts holds every option that changes a computed layout.
type LayoutKeyOpts struct {
	StackType    string  `json:"stack_type"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	SizeMultiple float64 `json:"size_multiple"`
	Seed         uint64  `json:"seed"`
}

// ArtifactKeyOpts holds every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Labels bool    `json:"labels"`
	Legend bool    `json:"legend"`
	Scale  float64 `json:"scale,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key for a layout of the data with hash dataHash.
	LayoutKey(dataHash string, opts LayoutKeyOpts) string
	// ArtifactKey returns the key for an artifact rendered from the layout
	// with hash layoutHash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key options into fixed-length keys of the form
// "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey generates a key for layout caching.
func (DefaultKeyer) LayoutKey(dataHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", dataHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
