// Package truss provides a typed Go SDK for the Truss structural-analysis
// engine.
//
// Truss is a closed, stateful analysis application exposing a
// call-by-reference automation API: every operation returns an integer
// status code and writes its results through output parameters or parallel
// output arrays. This SDK converts that surface into typed managers,
// records, and a single error type.
//
// # Quick Start
//
// Attach to a running engine instance and work with the model:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/trusslab/truss-go"
//	)
//
//	func main() {
//	    sess, err := truss.Attach(context.Background(), launcher)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer sess.Close()
//
//	    name, err := sess.Points().AddCartesian(context.Background(), 0, 0, 3.2)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("added point", name)
//	}
//
// The launcher is the bridge to the actual engine process (a COM or IPC
// binding); it is supplied by a platform-specific package, not by this
// module.
//
// # Session Configuration
//
// Sessions are configured with functional options:
//
//	sess, err := truss.Launch(ctx, launcher,
//	    truss.WithLogger(logger),
//	    truss.WithVersionRange(">= 21.0.0, < 22.0.0"),
//	)
//
// A connection profile can also be loaded from a truss.yaml file, see
// [LoadProfile].
//
// # Error Handling
//
// Every failure surfaces as a single typed error:
//
//	err := sess.Frames().SetSection(ctx, "F1", "W18X35")
//	if err != nil {
//	    var terr *truss.Error
//	    if errors.As(err, &terr) {
//	        switch terr.Kind {
//	        case truss.KindInvalidArgument:
//	            // bad input, the engine was never called
//	        case truss.KindEngineRejected:
//	            // the engine returned terr.Code
//	        }
//	    }
//	}
//
// # Concurrency
//
// The engine is a single-session, non-reentrant resource. All calls are
// synchronous and block until the engine responds; issuing concurrent
// calls into one [Session] is undefined behavior on the engine side.
// Callers that need concurrency must serialize calls themselves, for
// example through a single-worker queue.
//
// Contexts passed to operations are checked before dispatch only. An
// in-flight engine call cannot be cancelled; after a caller abandons a
// call, the session should be treated as suspect and preferably replaced.
//
// # Engine Version Compatibility
//
// This SDK targets engine version [EngineAPIVersion] and accepts any
// version inside [EngineVersionRange]. [Attach] and [Launch] verify the
// reported engine version and refuse incompatible instances; use
// [CheckCompatibility] to inspect a version string directly.
package truss
