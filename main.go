// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/joho/godotenv"

	"github.com/lnrlnrleite/social/cmd"
)

func main() {
	_ = godotenv.Load()

	cmd.Execute()
}
