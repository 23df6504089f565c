package messages

// Fatal and flow-control messages. Each one ends the current run.
const (
	RootDirMissingFmt = "versions directory %s does not exist"
	ScanRootFmt       = "read versions directory %s: %w"
	NoVersionsFmt     = "no Godot versions found under %s"
	SpawnFmt          = "launch %s: %w"

	UIRequiresTerminal = "this prompt requires an interactive terminal"
)
