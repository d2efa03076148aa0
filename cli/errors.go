package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc"
)

var (
	ErrConfigNotFound = errors.New(heredoc.Doc(`
	Config file not found. Loading from defaults...

	Run "catalogindex config init" to initialize a new configuration file
	Run "catalogindex help environment" for more information.

	Alternatively, make a "catalogindex.yaml" file in the current directory from the example given
`))

	errDBDisabled = errors.New("command needs the database, set db_enabled to true")
)
