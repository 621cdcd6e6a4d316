// Copyright (C) 2026 The Reel Authors.
//
// This file is part of Reel.
//
// Reel is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Reel is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Reel.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/reelhouse/reel/catalog"
	"github.com/reelhouse/reel/config"
	"github.com/reelhouse/reel/lib/log"
)

const (
	JobReindex = "reindex"
	JobFlush   = "flush"
)

var ErrUnknownJob = errors.New("unknown job")

type jobFunc func(ctx context.Context, c *catalog.Catalog) error

var jobs = map[string]jobFunc{
	JobReindex: reindex,
	JobFlush:   flush,
}

func schedule(config *config.Config, c *catalog.Catalog) (*gocron.Scheduler, error) {
	scheduler := gocron.NewScheduler(time.UTC)

	job := func(d time.Duration, name string) error {
		if d <= 0 {
			return nil
		}
		_, err := scheduler.Every(d).WaitForSchedule().Do(func() {
			if err := RunJob(c, name); err != nil {
				log.Errorf("job %s: %s\n", name, err)
			}
		})
		return err
	}

	if err := job(config.Catalog.ReindexInterval, JobReindex); err != nil {
		return nil, err
	}

	scheduler.StartAsync()
	return scheduler, nil
}

// RunJob runs the named maintenance job once.
func RunJob(c *catalog.Catalog, name string) error {
	doit, ok := jobs[name]
	if !ok {
		return ErrUnknownJob
	}
	log.Printf("job %s\n", name)
	return doit(context.Background(), c)
}

// Job opens the catalog and runs the named job once.
func Job(config *config.Config, name string) error {
	c, err := makeCatalog(config)
	if err != nil {
		return err
	}
	defer c.Close()
	return RunJob(c, name)
}

func reindex(ctx context.Context, c *catalog.Catalog) error {
	return c.Reindex(ctx)
}

func flush(ctx context.Context, c *catalog.Catalog) error {
	return c.FlushCache(ctx)
}
