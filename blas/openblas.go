// Copyright 2025 Tilelib Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

//go:build darwin || freebsd || linux

package blas

import (
	"github.com/bikshand/tilelib/internal/blas"
)

// OpenBLAS is the production Backend bound to a native CBLAS library.
type OpenBLAS = blas.OpenBLAS
