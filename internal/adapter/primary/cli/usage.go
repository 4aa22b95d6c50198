package cli

import (
	"fmt"
	"io"
)

const usageText = `WINVOL
Sets the master volume of the default system audio device
Arguments: scalar value between 0 and 1
Set the volume to 20%
winvol 0.2

Flags:
  -v, --verbose          increase log verbosity (-v, -vv, -vvv)
      --log-level name   log level (error|warn|info|debug|trace)
      --dry-run          walk the audio chain without changing the volume
      --prompt           read the volume from an interactive prompt
      --version          print the version
  -h, --help             show this help

Environment:
  WINVOL_FLAGS           default flags, split with shell quoting rules
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText+"\n")
}
