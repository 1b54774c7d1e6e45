/*
 * bolt.go, part of geoanal.
 *
 * Copyright 2024 The geoanal authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package table

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var (
	keySchema  = []byte("schema")
	bucketRows = []byte("rows")
)

func rowKey(i int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(i))
	return k
}

// saveBolt stores t in the bucket named after it in the bbolt database filename, replacing
// any previous content of the bucket. Other buckets are not touched, so several tables can
// share a database.
func saveBolt(t *Table, filename string) error {
	db, err := bbolt.Open(filename, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		name := []byte(t.Name)
		if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket(name)
		if err != nil {
			return err
		}
		s, err := json.Marshal(t.schema())
		if err != nil {
			return err
		}
		if err := b.Put(keySchema, s); err != nil {
			return err
		}
		rows, err := b.CreateBucket(bucketRows)
		if err != nil {
			return err
		}
		for i := 0; i < t.nrows; i++ {
			r, err := t.record(i)
			if err != nil {
				return err
			}
			if err := rows.Put(rowKey(i), r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return err
	}
	return db.Close()
}

func loadBolt(filename, name string) (*Table, error) {
	db, err := bbolt.Open(filename, 0600, &bbolt.Options{Timeout: 5 * time.Second, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer db.Close()
	var t *Table
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return fmt.Errorf("table not found: %s", name)
		}
		var s schemaDoc
		if err := json.Unmarshal(b.Get(keySchema), &s); err != nil {
			return err
		}
		var err error
		if t, err = fromSchema(name, s); err != nil {
			return err
		}
		rows := b.Bucket(bucketRows)
		if rows == nil {
			return nil
		}
		//keys are big endian, so ForEach goes in row order.
		return rows.ForEach(func(_, v []byte) error {
			return t.appendRecord(v)
		})
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}
