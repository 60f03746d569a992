package dynamic_bonding_curve

import (
	"time"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/helpers"
)

var DynamicBondingCurveProgramID = helpers.DynamicBondingCurveProgramID

const (
	DefaultMaxRetries      = 3
	DefaultRetryBackoff    = 500 * time.Millisecond
	DefaultMaxRetryBackoff = 5 * time.Second

	// DefaultConcurrency bounds parallel getMultipleAccounts batches.
	DefaultConcurrency = 4
)
