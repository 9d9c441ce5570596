package build

// Asset is one finished build artifact: its content plus its size in bytes.
// A nil Source marks an asset the build could not supply; the pipeline
// excludes it from the manifest with a warning instead of failing.
type Asset struct {
	Source []byte
	Size   int
}

// Chunk is a named bundle: a build-tool-defined group of output files
// referenced by a logical name rather than a literal path.
type Chunk struct {
	Name  string
	Files []string
}

// Compilation is the finished build output set the pipeline runs against.
// It is read-mostly: the pipeline may append assets and warnings but never
// removes anything, and it runs at a single point after all other output
// is finalized, so no locking is needed.
type Compilation struct {
	// PublicPath prefixes every URL embedded in the generated worker.
	PublicPath string

	// OutputPath is the build's declared output root. Asset names and
	// emitted paths are relative to it.
	OutputPath string

	// Chunks lists the build's named bundles.
	Chunks []Chunk

	// Warnings and Errors are the build's diagnostics lists. The pipeline
	// appends non-fatal findings to Warnings and fatal ones to Errors.
	Warnings []string
	Errors   []string

	assets  map[string]Asset
	order   []string
	emitted []string
}

// NewCompilation creates an empty compilation rooted at outputPath.
func NewCompilation(publicPath, outputPath string) *Compilation {
	return &Compilation{
		PublicPath: publicPath,
		OutputPath: outputPath,
		assets:     make(map[string]Asset),
	}
}

// AddAsset registers a build-supplied asset. Discovery order is preserved;
// re-adding a name replaces the content without changing its position.
func (c *Compilation) AddAsset(name string, source []byte) {
	if _, ok := c.assets[name]; !ok {
		c.order = append(c.order, name)
	}
	c.assets[name] = Asset{Source: source, Size: len(source)}
}

// EmitAsset registers an asset produced by the pipeline itself. Emitting
// over an existing name overwrites its content.
func (c *Compilation) EmitAsset(name string, source []byte) {
	c.AddAsset(name, source)
	c.emitted = append(c.emitted, name)
}

// Asset returns the named asset and whether it exists.
func (c *Compilation) Asset(name string) (Asset, bool) {
	a, ok := c.assets[name]
	return a, ok
}

// AssetNames returns asset names in discovery order.
func (c *Compilation) AssetNames() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// EmittedAssets returns the names the pipeline emitted, in emission order.
func (c *Compilation) EmittedAssets() []string {
	names := make([]string, len(c.emitted))
	copy(names, c.emitted)
	return names
}

// Chunk returns the named bundle and whether it exists.
func (c *Compilation) Chunk(name string) (Chunk, bool) {
	for _, ch := range c.Chunks {
		if ch.Name == name {
			return ch, true
		}
	}
	return Chunk{}, false
}

// ChunkFor returns the names of chunks that contain the given file.
func (c *Compilation) ChunkFor(file string) []string {
	var names []string
	for _, ch := range c.Chunks {
		for _, f := range ch.Files {
			if f == file {
				names = append(names, ch.Name)
				break
			}
		}
	}
	return names
}

// Warn appends a non-fatal finding to the build's warning list.
func (c *Compilation) Warn(msg string) {
	c.Warnings = append(c.Warnings, msg)
}

// Fail appends a fatal finding to the build's error list.
func (c *Compilation) Fail(msg string) {
	c.Errors = append(c.Errors, msg)
}
