package ctl

// Options is the root of the shadowmapctl command line. Struct tags are
// interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"YAML configuration path"`

	Convert *ConvertCmd `command:"convert" description:"Re-encode a saved document with another codec"`
	Dump    *DumpCmd    `command:"dump"    description:"Print the restored entries of a saved document"`
	Check   *CheckCmd   `command:"check"   description:"Audit the raw shadow sequences of a saved document"`
	Push    *PushCmd    `command:"push"    description:"Store a saved document in a redis slot"`
	Pull    *PullCmd    `command:"pull"    description:"Fetch a redis slot into a file"`
}

// Init instantiates every sub-command so go-flags can populate its fields.
// Each command shares a, the state of one invocation.
func (o *Options) Init(a *app) {
	a.opts = o
	o.Convert = &ConvertCmd{app: a}
	o.Dump = &DumpCmd{app: a}
	o.Check = &CheckCmd{app: a}
	o.Push = &PushCmd{app: a}
	o.Pull = &PullCmd{app: a}
}

// fileArg is the single positional argument most commands take.
type fileArg struct {
	File string `positional-arg-name:"file" description:"saved document"`
}
