// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import "github.com/filmclubs/fcweb/cmd/fcweb/command"

func main() {
	command.Execute()
}
