package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	dbFile = "gflow.db"
)

// Stores in the same directory share one *bolt.DB, closed with the last of them.
type sharedDB struct {
	db   *bolt.DB
	refs int
}

var (
	dbs     = map[string]*sharedDB{}
	dbslock = sync.Mutex{}
)

func acquireBoltDB(path string) (*bolt.DB, error) {
	dbslock.Lock()
	defer dbslock.Unlock()

	if s, exists := dbs[path]; exists {
		s.refs++
		return s.db, nil
	}

	bopts := &bolt.Options{}
	bopts.Timeout = time.Second

	db, err := bolt.Open(path, 0600, bopts)
	if err != nil {
		return nil, fmt.Errorf("state: open bolt db %s: %w", path, err)
	}
	dbs[path] = &sharedDB{db: db, refs: 1}
	return db, nil
}

func releaseBoltDB(path string) error {
	dbslock.Lock()
	defer dbslock.Unlock()

	s, exists := dbs[path]
	if !exists {
		return nil
	}
	s.refs--
	if s.refs > 0 {
		return nil
	}
	delete(dbs, path)
	return s.db.Close()
}

func newBoltDBKeyValueStore[K, V any](o *options[K, V]) (KeyValueStore[K, V], error) {
	dbPath := filepath.Join(o.dirPath, dbFile)
	if err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm); err != nil {
		return nil, err
	}
	db, err := acquireBoltDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(o.name))
		return err
	})
	if err != nil {
		_ = releaseBoltDB(dbPath)
		return nil, fmt.Errorf("state: create bucket %s: %w", o.name, err)
	}

	return &boltDBKeyValueStore[K, V]{
		db:       db,
		path:     dbPath,
		bucket:   []byte(o.name),
		keySerde: o.keySerde,
		valSerde: o.valueSerde,
	}, nil
}

type boltDBKeyValueStore[K, V any] struct {
	db       *bolt.DB
	path     string
	bucket   []byte
	keySerde Serde[K]
	valSerde Serde[V]
	once     sync.Once
}

var _ KeyValueStore[any, any] = &boltDBKeyValueStore[any, any]{}

func (kvs *boltDBKeyValueStore[K, V]) Get(key K) (v V, err error) {
	keySer, err := kvs.keySerde.Serialize(key)
	if err != nil {
		return v, err
	}

	err = kvs.db.View(func(tx *bolt.Tx) error {
		bv := tx.Bucket(kvs.bucket).Get(keySer)
		if bv == nil {
			return ErrNotFound
		}
		v, err = kvs.valSerde.Deserialize(bv)
		return err
	})
	return
}

func (kvs *boltDBKeyValueStore[K, V]) Put(key K, value V) error {
	keySer, err := kvs.keySerde.Serialize(key)
	if err != nil {
		return err
	}
	valSer, err := kvs.valSerde.Serialize(value)
	if err != nil {
		return err
	}

	return kvs.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(kvs.bucket).Put(keySer, valSer)
	})
}

func (kvs *boltDBKeyValueStore[K, V]) Delete(key K) error {
	keySer, err := kvs.keySerde.Serialize(key)
	if err != nil {
		return err
	}

	return kvs.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(kvs.bucket).Delete(keySer)
	})
}

func (kvs *boltDBKeyValueStore[K, V]) Close() (err error) {
	kvs.once.Do(func() {
		err = releaseBoltDB(kvs.path)
	})
	return
}
