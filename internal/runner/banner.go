package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = (`
   __                 __        __
  / /___ _____ ___   / /_  ____/ /___ _____
 / / __ '/ __ '__ \ / __ \/ __  / __ '/_  /
/ / /_/ / / / / / // /_/ / /_/ / /_/ / / /_
\_\__,_/_/ /_/ /_(_)___/\__,_/\__,_/ /___/
`)

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}
