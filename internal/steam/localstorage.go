package steam

import (
	"bytes"
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// Record is a key/value pair read from the Local Storage LevelDB.
type Record struct {
	Key   []byte
	Value []byte
}

// FindRecord scans the LevelDB at storePath from the first key and returns the first
// record whose key contains every needle. found is false when the scan reaches the end
// without a match.
//
// The store is opened read-only and never written to. While Steam is running it holds
// the LevelDB lock and FindRecord fails with ErrStoreUnavailable, as it does when the
// store or its LOCK file is missing.
func FindRecord(ctx context.Context, storePath string, needles ...string) (rec Record, found bool, err error) {
	release, err := lockStore(storePath)
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer release()

	db, err := leveldb.OpenFile(storePath, &opt.Options{
		ReadOnly:       true,
		ErrorIfMissing: true,
	})
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer db.Close()

	iter := db.NewIterator(nil, nil)
	defer iter.Release()

	patterns := lo.Map(needles, func(needle string, _ int) []byte {
		return []byte(needle)
	})

	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return Record{}, false, err
		}
		key := iter.Key()
		if !containsAll(key, patterns) {
			continue
		}
		// The iterator reuses its buffers, so copy before it is released.
		return Record{
			Key:   bytes.Clone(key),
			Value: bytes.Clone(iter.Value()),
		}, true, nil
	}
	if err := iter.Error(); err != nil {
		return Record{}, false, fmt.Errorf("failed to iterate Local Storage database: %w", err)
	}
	return Record{}, false, nil
}

func containsAll(key []byte, patterns [][]byte) bool {
	return lo.EveryBy(patterns, func(p []byte) bool {
		return bytes.Contains(key, p)
	})
}
