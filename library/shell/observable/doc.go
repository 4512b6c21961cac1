// Package observable decorates command and query handlers with metrics, tracing and logging.
//
// The feature handlers stay free of infrastructure concerns: they validate, read, decide and write. Wrapping
// one in a CommandWrapper or QueryWrapper adds the instrumentation around each Handle call, using whichever
// collectors were configured via options. Unconfigured collectors are skipped.
//
//	issue, err := observable.NewCommandWrapper[issueinstance.Command, core.Loan](
//		issueinstance.NewCommandHandler(db, repo),
//		observable.WithCommandMetrics[issueinstance.Command, core.Loan](metrics),
//		observable.WithCommandContextualLogging[issueinstance.Command, core.Loan](logger),
//	)
package observable
