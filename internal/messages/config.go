package messages

// Config store warnings. All of these are non-fatal: the run continues with
// an empty config or an unsaved selection.
const (
	ConfigLoadWarnFmt  = "Warning: could not read %s, starting with an empty config: %v\n"
	ConfigSaveWarnFmt  = "Warning: could not save %s: %v\n"
	ConfigStaleWarnFmt = "Warning: remembered executable %s no longer exists, picking again\n"

	ConfigMarshalFmt   = "encode config: %w"
	ConfigWriteFileFmt = "write %s: %w"
	ConfigReadFileFmt  = "read %s: %w"
	ConfigParseFmt     = "parse %s: %w"

	ConfigResolveSelfPathFmt = "locate gdrun executable: %w"
)
