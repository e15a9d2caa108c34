package registry

// ParseEntry populates the single-assignment slot of one day's parser.
type ParseEntry struct {
	Day      int
	Populate func(text string) error
}

// PartEntry is the run adapter of one part. Run reads the already
// populated slot and renders the result.
type PartEntry struct {
	Day  int
	Part int
	Run  func() (string, error)
}

// PartNumber returns the declared part number
func (e PartEntry) PartNumber() int { return e.Part }

// BenchEntry is the bench adapter of one part. Every call to Run parses
// text from scratch; no state is carried between calls.
type BenchEntry struct {
	Day  int
	Part int
	Run  func(text string) (string, error)
}

// PartNumber returns the declared part number
func (e BenchEntry) PartNumber() int { return e.Part }

// Descriptor is the set of component variants a Catalog holds
type Descriptor interface {
	ParseEntry | PartEntry | BenchEntry
}
