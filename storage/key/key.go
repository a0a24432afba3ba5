// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package key

import (
	"path"
	"strings"
)

// A Key represents the unitque identity of an object.
// Key schema likes file name of a file system,
//     Key("/obj/0af020217fd26e0b6bf40912bca223b1dd806a21")
//     Key("/ref/main")
// Inspired by https://github.com/ipfs/go-datastore
type Key struct {
	string
}

// NewKey constructs a key from string. it will clean the value.
func NewKey(s string) Key {
	k := Key{s}
	k.Clean()
	return k
}

// NewKeyFromBytes constructs a key from byte slice. it will clean the value.
func NewKeyFromBytes(s []byte) Key {
	return NewKey(string(s))
}

// RawKey creates a new Key without safety checking the input. Use with care.
func RawKey(s string) Key {
	// accept an empty string and fix it to avoid special cases
	// elsewhere
	if len(s) == 0 {
		return Key{"/"}
	}

	// perform a quick sanity check that the key is in the correct
	// format, if it is not then it is a programmer error and it is
	// okay to panic
	if len(s) == 0 || s[0] != '/' || (len(s) > 1 && s[len(s)-1] == '/') {
		panic("invalid datastore key: " + s)
	}

	return Key{s}
}

// NewKeyWithPaths constructs a key out of a path slice.
func NewKeyWithPaths(p ...string) Key {
	return NewKey(strings.Join(p, "/"))
}

// Clean up a Key, using path.Clean.
func (k *Key) Clean() {
	switch {
	case len(k.string) == 0:
		k.string = "/"
	case k.string[0] == '/':
		k.string = path.Clean(k.string)
	default:
		k.string = path.Clean("/" + k.string)
	}
}

// String is the string value of Key
func (k Key) String() string {
	return k.string
}

// Bytes returns the string value of Key as a []byte
func (k Key) Bytes() []byte {
	return []byte(k.string)
}

// Equal checks equality of two keys
func (k Key) Equal(k2 Key) bool {
	return k.string == k2.string
}

// List returns the `list` representation of this Key.
//   NewKey("/obj/0af020217fd26e0b6bf40912bca223b1dd806a21").List()
//   ["obj", "0af020217fd26e0b6bf40912bca223b1dd806a21"]
func (k Key) List() []string {
	return strings.Split(k.string, "/")[1:]
}

// BaseName returns the basename of this key like path.Base(filename)
func (k Key) BaseName() string {
	list := k.List()
	return list[len(list)-1]
}

// IsAncestorOf returns whether this key is a prefix of `other`
//   NewKey("/Ancestor").IsAncestorOf("/Ancestor/Child")
//   true
func (k Key) IsAncestorOf(other Key) bool {
	if other.string == k.string {
		return false
	}
	return strings.HasPrefix(other.string, k.string)
}
