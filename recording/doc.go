// Package recording provides a backend that records fx backend calls as
// typed commands.
//
// A Recorder implements fx.Backend. Every call becomes a Command value,
// so the exact sequence a drawing produces (state saves, compositing
// parameters, transparency layers, clip paths, fills) can be inspected,
// asserted in tests, or replayed onto another backend.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	c := fx.NewContext(800, 600, fx.WithBackend(rec))
//
//	e, _ := c.Alpha(0.5)
//	c.With(e, func() error {
//	    c.Rect(10, 10, 100, 100)
//	    return nil
//	})
//	c.Flush()
//
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// # Playback
//
// FinishRecording returns an immutable Recording that replays onto any
// backend:
//
//	r := rec.FinishRecording()
//	r.Playback(raster.New(800, 600))
//
// # Registry
//
// Importing the package registers it as "recording":
//
//	import _ "github.com/gogpu/fx/recording"
//
//	b, err := fx.NewBackend("recording", 800, 600)
package recording
