package cli

import (
	"github.com/spf13/viper"
)

// CmdParams holds all dependencies needed by command handlers
type CmdParams struct {
	Viper *viper.Viper
	Use   string
	Short string
	Long  string
}
