// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build bignum_debug

package bignum

// debugBignum enables internal consistency checks. A failed check panics
// with a message starting with "BUG:".
const debugBignum = true
