package app

import (
	"fmt"

	"cosmossdk.io/store/rootmulti"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
)

// loadStores loads the latest version. Stores mounted after the database
// was first committed are added through a store upgrade.
func loadStores(cms storetypes.CommitMultiStore, db dbm.DB, storeKeys []string) error {
	missing := filterMissingStores(db, storeKeys)
	if rootmulti.GetLatestVersion(db) <= 0 || len(missing) == 0 {
		return cms.LoadLatestVersion()
	}
	return cms.LoadLatestVersionAndUpgrade(&storetypes.StoreUpgrades{Added: missing})
}

func storeExistsAtLatestVersion(db dbm.DB, storeKey string) bool {
	if db == nil || storeKey == "" {
		return false
	}
	latest := rootmulti.GetLatestVersion(db)
	if latest <= 0 {
		return false
	}
	bz, err := db.Get([]byte(fmt.Sprintf("s/%d", latest)))
	if err != nil || bz == nil {
		return false
	}
	ci := &storetypes.CommitInfo{}
	if err := ci.Unmarshal(bz); err != nil {
		return false
	}
	for _, si := range ci.StoreInfos {
		if si.Name == storeKey {
			return true
		}
	}
	return false
}

func filterMissingStores(db dbm.DB, storeKeys []string) []string {
	missing := make([]string, 0, len(storeKeys))
	for _, k := range storeKeys {
		if !storeExistsAtLatestVersion(db, k) {
			missing = append(missing, k)
		}
	}
	return missing
}
