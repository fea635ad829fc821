package service

import (
	"time"

	"github.com/Alphiii2005/alphabot-live/model"
)

// PurgeRevokedTokensTask drops revocation rows whose tokens have expired on
// their own. Runs daily from the cron installed in main.
func PurgeRevokedTokensTask() {
	logger.Infof("[%s] Start scheduled task PurgeRevokedTokensTask", "scheduled task")
	start := time.Now()

	purged, err := model.PurgeExpiredTokens(time.Now())
	if err != nil {
		logger.Warnf("[%s] purge revoked tokens error, %s", "scheduled task", err)
		return
	}

	logger.Infof("[%s] Finished scheduled task PurgeRevokedTokensTask, purged %d tokens in %v",
		"scheduled task", purged, time.Since(start))
}
