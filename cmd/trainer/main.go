// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/poiesic/collegewala/miner"
	"github.com/poiesic/collegewala/storage/jsonfile"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	dataDir := "./data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	store, err := jsonfile.Open(dataDir)
	if err != nil {
		panic(err)
	}

	job, err := miner.NewMiner(store, store, miner.WithProgress(os.Stdout))
	if err != nil {
		panic(err)
	}
	defer job.Close()

	if _, err := job.Run(context.Background()); err != nil {
		panic(err)
	}
}
