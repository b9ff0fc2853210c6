package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/input"
	"github.com/lixenwraith/voxel-fighter/mapio"
	"github.com/lixenwraith/voxel-fighter/render"
	"github.com/lixenwraith/voxel-fighter/render/renderer"
)

// errQuit ends the errgroup on a quit key; it is not reported as a failure
var errQuit = errors.New("quit requested")

// hudPrefixes selects the status metrics shown on the HUD
var hudPrefixes = []string{"collision.", "explosion.", "broadphase.", "engine.entities", "audio.played"}

// view is the camera state; owned by the frame goroutine
type view struct {
	slice  int
	follow bool
}

func runTerminal(ctx context.Context, loop *engine.Loop, sb *sandbox, keys *input.KeyTable, savePath string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)
	defer core.SetCrashCleanup(nil)
	screen.HideCursor()

	orch := render.NewRenderOrchestrator(screen)
	orch.Register(renderer.NewTerrainRenderer(), render.PriorityTerrain)
	orch.Register(renderer.NewEntityRenderer(sb.player), render.PriorityEntities)
	orch.Register(renderer.NewStatusBarRenderer(hudPrefixes...), render.PriorityUI)

	v := &view{follow: true}
	loop.OnFrame(func(w *engine.World) {
		cell := sb.playerCell()
		if v.follow {
			v.slice = render.CellOf(cell[2])
		}
		sw, sh := orch.Buffer().Bounds()
		orch.RenderFrame(render.NewRenderContext(w, sb.mapEntity, v.slice, cell, sw, sh))
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(core.Guard(func() error {
		return loop.Run(gctx)
	}))
	g.Go(core.Guard(func() error {
		return pumpInput(gctx, screen, keys, loop, sb, v, orch, savePath)
	}))
	g.Go(func() error {
		// Unblock PollEvent once anything ends the group
		<-gctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// pumpInput forwards terminal events to the frame goroutine until quit or ctx ends
func pumpInput(ctx context.Context, screen tcell.Screen, keys *input.KeyTable, loop *engine.Loop,
	sb *sandbox, v *view, orch *render.RenderOrchestrator, savePath string) error {
	log := sb.world.Resources.Log
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			loop.Submit(func(*engine.World) { orch.Resize(w, h) })
		case *tcell.EventKey:
			intent := keys.Resolve(ev)
			switch intent {
			case input.IntentNone:
				continue
			case input.IntentQuit:
				return errQuit
			}
			if !loop.Submit(func(*engine.World) { sb.handle(intent, v, savePath) }) {
				log.Debug("input dropped, backlog full", zap.Stringer("intent", intent))
			}
		}
	}
}

// handle applies one intent on the frame goroutine
func (s *sandbox) handle(intent input.Intent, v *view, savePath string) {
	if s.controller.Apply(intent) {
		return
	}
	m := s.voxelMap()
	switch intent {
	case input.IntentSliceUp:
		v.follow = false
		v.slice = max(v.slice-1, 0)
	case input.IntentSliceDown:
		v.follow = false
		v.slice = min(v.slice+1, max(m.Z-1, 0))
	case input.IntentFollow:
		v.follow = true
	case input.IntentSaveMap:
		log := s.world.Resources.Log
		if savePath == "" {
			log.Warn("map save requested without -save path")
			return
		}
		if err := mapio.SaveFile(savePath, m); err != nil {
			log.Error("map save failed", zap.String("path", savePath), zap.Error(err))
			return
		}
		log.Info("map saved", zap.String("path", savePath), zap.Uint64("digest", m.Digest()))
	}
}
