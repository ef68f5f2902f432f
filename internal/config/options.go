package config

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. This is the single source of truth for default values and
// generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Core paths and conventions
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; notebook DB is data_dir/notepolish.db"},

		// Sections (dotted keys for generator convenience)
		{Key: "notebook.backend", Default: "sqlite", Comment: "Notebook backend: sqlite (local file) or applescript (Apple Notes via osascript)"},
		{Key: "enhance.enabled", Default: true, Comment: "Run note bodies through the external rewriter before rendering"},
		{Key: "enhance.command", Default: "perplexity", Comment: "External AI CLI invoked with the rewrite prompt as its last argument"},
		{Key: "enhance.timeout_seconds", Default: 60, Comment: "Per-note timeout for the rewriter command"},
		{Key: "polish.prefix", Default: "Polished - ", Comment: "Name prefix applied to polished copies"},
		{Key: "polish.skip_unchanged", Default: true, Comment: "Skip notes whose polished copy matches the current content hash"},
	}
}
