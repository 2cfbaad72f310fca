package service

import "time"

// OnboardingMetrics records business outcomes of provider onboarding.
type OnboardingMetrics interface {
	// ObserveActivation counts one activation attempt by outcome (activated or the guard code).
	ObserveActivation(outcome string)

	// ObserveDocumentCheck records the latency of one documents module call.
	ObserveDocumentCheck(check DocumentCheck, result string, started time.Time)

	// ObserveUpload counts one upload attempt by outcome.
	ObserveUpload(outcome string)

	// ObserveVerification counts one processed verification job by decision.
	ObserveVerification(decision string)
}
