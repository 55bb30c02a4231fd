package ipc

// Request carries the recognized CLI options serialized ahead of the payload.
// Flag parsing and semantics belong to the daemon; the client's only contract
// is to render every option faithfully, in a fixed order, on the wire.
type Request struct {
	// Cwd is emitted as a synthetic first line so the daemon resolves
	// relative paths against the client's working directory.
	Cwd string

	Config        string
	Stdin         bool
	StdinFilename string
	Fix           bool
	FixDryRun     bool
	FixToStdout   bool
	Format        string
	IgnorePath    string
	IgnorePattern string
	NoIgnore      bool
}

// optionOrder fixes the wire order of option lines. Every recognized option
// is always emitted, including empty values for unset options, so the daemon
// never has to diff against defaults.
var optionOrder = []struct {
	name  string
	value func(*Request) string
}{
	{"config", func(r *Request) string { return r.Config }},
	{"stdin", func(r *Request) string { return renderBool(r.Stdin) }},
	{"stdin_filename", func(r *Request) string { return r.StdinFilename }},
	{"fix", func(r *Request) string { return renderBool(r.Fix) }},
	{"fix_dry_run", func(r *Request) string { return renderBool(r.FixDryRun) }},
	{"fix_to_stdout", func(r *Request) string { return renderBool(r.FixToStdout) }},
	{"format", func(r *Request) string { return r.Format }},
	{"ignore_path", func(r *Request) string { return r.IgnorePath }},
	{"ignore_pattern", func(r *Request) string { return r.IgnorePattern }},
	{"no_ignore", func(r *Request) string { return renderBool(r.NoIgnore) }},
}

func renderBool(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
