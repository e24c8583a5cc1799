package cli

import "stv/internal/config"

// Flags holds command-line flags.
type Flags struct {
	Filter        string
	Headed        bool
	Poll          bool
	SettleMS      int
	NoScreenshots bool
	NoRealtime    bool
	OpenFaills    bool
	Verbose       bool
	HistoryLimit  int
}

// ToConfigFlags converts CLI flags to config flags.
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:        f.Filter,
		Headed:        f.Headed,
		Poll:          f.Poll,
		SettleMS:      f.SettleMS,
		NoScreenshots: f.NoScreenshots,
		NoRealtime:    f.NoRealtime,
		OpenFaills:    f.OpenFaills,
		Verbose:       f.Verbose,
		HistoryLimit:  f.HistoryLimit,
	}
}
