package app

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"folio/internal/logging"
)

// ForcedShutdownTimeout is the time after a signal after which we force exit.
const ForcedShutdownTimeout = 5 * time.Second

// setupSignalHandler shuts the application down on SIGINT or SIGTERM.
// Returns a cleanup function that should be called when the app exits.
func (a *App) setupSignalHandler() func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Done channel to signal goroutine termination
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigChan:
			logging.Debug("received signal", "signal", sig)

			// Cancelling the context ends the UI or the plain run; exit
			// anyway if that does not happen in time.
			forceExit := time.AfterFunc(ForcedShutdownTimeout, func() {
				logging.Warn("forced shutdown due to timeout")
				os.Exit(1)
			})
			a.cancel()
			select {
			case <-done:
				forceExit.Stop()
			case <-time.After(ForcedShutdownTimeout):
			}

		case <-done:
			return

		case <-a.ctx.Done():
			return
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
