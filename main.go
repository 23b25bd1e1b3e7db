/*
 * Copyright (c) 2026, the imp authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/imp-lang/imp/cmd/impc"
)

func main() {
	impc.Execute()
}
