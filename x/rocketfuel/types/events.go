package types

const (
	EventGameCompleted    = "rocketfuel.game_completed"
	EventRevivePurchased  = "rocketfuel.revive_purchased"
	EventPaused           = "rocketfuel.paused"
	EventUnpaused         = "rocketfuel.unpaused"
	EventAdminTransferred = "rocketfuel.admin_transferred"
	EventTransfer         = "rocketfuel.transfer"
	EventBurn             = "rocketfuel.burn"
	EventParamsUpdated    = "rocketfuel.params_updated"
)

const (
	AttrPlayer           = "player"
	AttrScore            = "score"
	AttrLevel            = "level"
	AttrGameTime         = "game_time"
	AttrEnemiesDestroyed = "enemies_destroyed"
	AttrRocketsUsed      = "rockets_used"
	AttrReward           = "reward"
	AttrWeekID           = "week_id"
	AttrSessionID        = "session_id"
	AttrCost             = "cost"
	AttrAdmin            = "admin"
	AttrNewAdmin         = "new_admin"
	AttrSender           = "sender"
	AttrRecipient        = "recipient"
	AttrAmount           = "amount"
	AttrStateVersion     = "state_version"
)
