/*
 * Copyright 2025 The netswitch Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/netswitch/netswitch/pkg/actuator"
	"github.com/netswitch/netswitch/pkg/applier"
	"github.com/netswitch/netswitch/pkg/cli"
	"github.com/netswitch/netswitch/pkg/probe"
	"github.com/netswitch/netswitch/pkg/store"
)

func main() {
	st := store.Load(store.DefaultDocumentPath(), nil)

	app := applier.New(actuator.NewNetworkSetup(nil), nil)
	c := cli.New(st, probe.NewSystemProbe(nil, nil), app, os.Stdout)

	if err := c.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
