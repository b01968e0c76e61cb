package types

// ExtractionBackend identifies the library or tool that turns a PDF into raw text.
type ExtractionBackend string

const (
	BackendLedongthuc ExtractionBackend = "ledongthuc"
	BackendRSC        ExtractionBackend = "rsc"
	BackendMarkitdown ExtractionBackend = "markitdown"
)

// DefaultImage is the container image used by the markitdown backend.
const DefaultImage = "markitdown:latest"

// ExtractionConfig holds the settings for a single conversion run. Values come
// from command-line flags, optionally layered over a YAML config file.
type ExtractionConfig struct {
	// Backend selects the extraction backend: ledongthuc, rsc, or markitdown.
	Backend ExtractionBackend `json:"backend" yaml:"backend" mapstructure:"backend" validate:"oneof=ledongthuc rsc markitdown"`

	// Image is the container image run by the markitdown backend.
	Image string `json:"image" yaml:"image" mapstructure:"image" validate:"required_if=Backend markitdown"`

	// Verbose enables progress and diagnostic output.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`

	// HistoryDB is the path of the SQLite conversion history. Empty disables history.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty" mapstructure:"history_db"`
}

// DefaultExtractionConfig returns the configuration used when no flags or
// config file override it.
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		Backend: BackendLedongthuc,
		Image:   DefaultImage,
	}
}
