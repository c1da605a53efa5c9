package main

import (
	"strings"
	"time"

	"ring-queue/ring"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// demo walks fresh queues through the scenario catalogue, logging every
// step. A positive delay paces the steps so a live run stays readable.
type demo struct {
	log      *logrus.Entry
	clock    clock.Clock
	delay    time.Duration
	capacity int
}

type scenarioFunc func(d *demo, log *logrus.Entry) ring.Summary

type scenario struct {
	name string
	desc string
	run  scenarioFunc
}

var catalogue = []scenario{
	{name: "basic", desc: "enqueue, inspect both ends, dequeue", run: (*demo).basic},
	{name: "bulk", desc: "batch enqueue, batch dequeue, clear", run: (*demo).bulk},
	{name: "search", desc: "find and contains", run: (*demo).search},
	{name: "rotation", desc: "left-rotations, including oversized steps", run: (*demo).rotation},
	{name: "bounds", desc: "errors from an empty queue and bad positions", run: (*demo).bounds},
	{name: "copy", desc: "clone independence and reassignment", run: (*demo).copying},
	{name: "growth", desc: "capacity doubling under sustained inserts", run: (*demo).growth},
}

func scenarioList() []string {
	names := make([]string, 0, len(catalogue)+1)
	for _, sc := range catalogue {
		names = append(names, sc.name)
	}

	return append(names, "all")
}

// run executes the named scenarios, logging each one's closing summary.
func (d *demo) run(names []string) error {
	selected, err := selectScenarios(names)
	if err != nil {
		return err
	}

	for _, sc := range selected {
		log := d.log.WithField("scenario", sc.name)
		log.Info(sc.desc)

		summary := sc.run(d, log)
		log.WithField("result", summary.String()).Info("scenario finished")
	}

	return nil
}

func selectScenarios(names []string) ([]scenario, error) {
	selected := make([]scenario, 0, len(catalogue))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "all" {
			return catalogue, nil
		}

		found := false
		for _, sc := range catalogue {
			if sc.name == name {
				selected = append(selected, sc)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown scenario %q (have: %s)", name, strings.Join(scenarioList(), ", "))
		}
	}

	return selected, nil
}

func (d *demo) basic(log *logrus.Entry) ring.Summary {
	q := ring.NewWithCapacity(d.capacity)

	for _, v := range []int64{10, 20, 30} {
		q.Enqueue(v)
		d.step(log.WithField("value", v), "enqueued")
	}

	d.step(log.WithField("state", q.Summarize().String()), "filled")

	if v, err := q.Dequeue(); err != nil {
		d.reportRefusal(log, err)
	} else {
		d.step(log.WithField("value", v), "dequeued")
	}

	return q.Summarize()
}

func (d *demo) bulk(log *logrus.Entry) ring.Summary {
	q := ring.NewWithCapacity(d.capacity)

	q.EnqueueAll(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	d.step(log.WithField("len", q.Len()), "enqueued a batch")

	batch := q.DequeueMany(5)
	d.step(log.WithFields(logrus.Fields{
		"batch":     batch,
		"remaining": q.Len(),
	}), "dequeued the front half")

	q.Clear()
	d.step(log.WithFields(logrus.Fields{
		"len": q.Len(),
		"cap": q.Cap(),
	}), "cleared, capacity kept")

	return q.Summarize()
}

func (d *demo) search(log *logrus.Entry) ring.Summary {
	q := ring.NewWithCapacity(d.capacity)
	for i := int64(1); i <= 10; i++ {
		q.Enqueue(i)
	}

	d.step(log.WithField("position", q.Find(5)), "looked up 5")
	d.step(log.WithField("position", q.Find(11)), "looked up 11 (not there)")
	d.step(log.WithField("contains", q.Contains(7)), "asked whether 7 is queued")

	return q.Summarize()
}

func (d *demo) rotation(log *logrus.Entry) ring.Summary {
	q := ring.NewWithCapacity(d.capacity)
	q.EnqueueAll(1, 2, 3, 4, 5)

	q.Rotate(2)
	d.step(log.WithField("state", q.Summarize().String()), "rotated by 2")

	q.Rotate(q.Len() + 1) // wraps all the way around, plus one
	d.step(log.WithField("state", q.Summarize().String()), "rotated by len+1")

	q.Rotate(-3)
	d.step(log.WithField("state", q.Summarize().String()), "negative steps are ignored")

	return q.Summarize()
}

func (d *demo) bounds(log *logrus.Entry) ring.Summary {
	q := ring.NewWithCapacity(d.capacity)

	if _, err := q.Dequeue(); err != nil {
		d.reportRefusal(log, err)
	}

	q.EnqueueAll(1, 2, 3)

	for _, position := range []int{-1, q.Len()} {
		if _, err := q.Peek(position); err != nil {
			d.reportRefusal(log.WithField("position", position), err)
		}
	}

	return q.Summarize()
}

func (d *demo) copying(log *logrus.Entry) ring.Summary {
	q := ring.NewWithCapacity(4)
	q.EnqueueAll(1, 2, 3, 4)
	q.DequeueMany(2)
	q.EnqueueAll(5, 6) // contents now wrap the buffer seam

	c := q.Clone()
	d.step(log.WithField("clone", c.Summarize().String()), "cloned")

	if v, err := q.Dequeue(); err == nil {
		d.step(log.WithField("value", v), "dequeued from the original")
	}
	q.Enqueue(7)
	d.step(log.WithFields(logrus.Fields{
		"original": q.Summarize().String(),
		"clone":    c.Summarize().String(),
	}), "mutated the original, clone unchanged")

	c.CopyFrom(c)
	d.step(log.WithField("clone", c.Summarize().String()), "self-assignment changed nothing")

	c.CopyFrom(q)
	d.step(log.WithField("clone", c.Summarize().String()), "reassigned from the original")

	return c.Summarize()
}

func (d *demo) growth(log *logrus.Entry) ring.Summary {
	q := ring.New() // default capacity, grows on demand

	v := int64(0)
	fill := func() {
		for !q.IsFull() {
			v++
			q.Enqueue(v)
		}
	}

	fill()
	d.step(log.WithFields(logrus.Fields{
		"len": q.Len(),
		"cap": q.Cap(),
	}), "filled to capacity")

	v++
	q.Enqueue(v)
	d.step(log.WithFields(logrus.Fields{
		"len": q.Len(),
		"cap": q.Cap(),
	}), "one more insert doubled the buffer")

	fill()
	v++
	q.Enqueue(v)
	d.step(log.WithFields(logrus.Fields{
		"len": q.Len(),
		"cap": q.Cap(),
	}), "doubled again, order untouched")

	return q.Summarize()
}

// step logs one demonstration step and then waits out the configured
// delay.
func (d *demo) step(log *logrus.Entry, msg string) {
	log.Info(msg)
	d.pause()
}

// reportRefusal renders an expected failure without stopping the run.
func (d *demo) reportRefusal(log *logrus.Entry, err error) {
	var kind string
	switch {
	case errors.Is(err, ring.ErrEmpty):
		kind = "empty queue"
	case errors.Is(err, ring.ErrOutOfRange):
		kind = "out of range"
	default:
		kind = "unexpected"
	}

	log.WithError(err).WithField("kind", kind).Warn("operation refused")
	d.pause()
}

func (d *demo) pause() {
	if d.delay <= 0 {
		return
	}

	d.clock.Sleep(d.delay)
}
