package dynamic_bonding_curve

import (
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
)

type PoolConfig = shared.PoolConfig

type PoolFeesConfig = shared.PoolFeesConfig

type BaseFeeConfig = shared.BaseFeeConfig

type DynamicFeeConfig = shared.DynamicFeeConfig

type LockedVestingConfig = shared.LockedVestingConfig

type CurvePoint = shared.CurvePoint

type ProgramAccount[T any] = shared.ProgramAccount[T]
