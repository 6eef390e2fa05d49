// Package logger is the public API of the logging facility. Most users
// only need to import this package.
//
// The package owns a process-wide root logger. Programs configure it
// once at startup by attaching handlers and choosing a level, then log
// through the package-level functions from anywhere:
//
//	logger.AddHandler(mail)
//	logger.SetLevel(logger.DebugLevel)
//	defer logger.Shutdown()
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// Each handler may filter by its own level (see handler.LevelFilter), so a
// mail handler attached at ERROR stays quiet while the root runs at DEBUG.
// While no handler is attached, WARN and above go to stderr.
//
// Exception logs an error at ERROR together with a trace. Errors built
// with WithStack or Recovered carry the trace of the place they were
// raised, which is what a recovered panic should report:
//
//	defer func() {
//	    if err := logger.Recovered(recover()); err != nil {
//	        logger.Exceptionf(err, "an error has occurred: %s", err)
//	    }
//	}()
//
// Independent loggers are built with the Builder:
//
//	log := logger.NewBuilder().
//	    WithName("worker").
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    Build()
package logger
