package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "gdrun"
	// RootShort is the short description for the root command.
	RootShort = "Godot version launcher"
	RootLong  = "Gdrun discovers installed Godot versions, remembers which executable you picked for each one, and launches it.\n\nFlags:\n  -s, --select    " + FlagSelect + "\n  -v, --version   Print version and exit\n\nAll other arguments are forwarded verbatim to the launched Godot process.\nUse a standalone \"--\" to forward arguments that collide with gdrun's own flags."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagSelect = "Ignore the remembered executable for the chosen version and pick again"

	// PromptRootDirTitle asks for the directory holding one subdirectory per version.
	PromptRootDirTitle       = "Where are your Godot versions installed?"
	PromptRootDirDescription = "Path to a directory with one subdirectory per Godot version."
	PromptVersionTitle       = "Which Godot version do you want to launch?"
	PromptExecutableTitle    = "Which executable do you want to use?"

	Cancelled = "Cancelled, nothing launched."

	UsingVersionFmt = "Using %s\n"
	LaunchingFmt    = "Launching %s\n"
)
