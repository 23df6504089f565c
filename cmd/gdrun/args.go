package main

// options holds the arguments gdrun recognizes itself plus everything it
// forwards verbatim to the launched Godot process.
type options struct {
	skipDefault bool
	showVersion bool
	showHelp    bool
	passthrough []string
}

// parseArgs splits gdrun's own flags from the passthrough arguments. Flags
// are recognized anywhere before a standalone "--"; everything after it is
// forwarded untouched, so Godot flags that collide with gdrun's can still be
// passed through.
func parseArgs(args []string) options {
	var opts options
	for i, arg := range args {
		if arg == "--" {
			opts.passthrough = append(opts.passthrough, args[i+1:]...)
			break
		}
		switch arg {
		case "--select", "-s":
			opts.skipDefault = true
		case "--version", "-v":
			opts.showVersion = true
		case "--help", "-h":
			opts.showHelp = true
		default:
			opts.passthrough = append(opts.passthrough, arg)
		}
	}
	return opts
}
