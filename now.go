package bankaccount

import (
	"os"
	"time"
)

// TimestampLayout is the layout of statement timestamps. Milliseconds keep
// entries recorded within the same second apart.
const TimestampLayout = "2006-01-02 15:04:05.000"

// TestingNowEnv names the environment variable that pins Now, using TimestampLayout.
const TestingNowEnv = "BANKACCOUNT_TESTING_NOW"

// Now returns the current time, or the time pinned by TestingNowEnv.
func Now() time.Time {
	if v := os.Getenv(TestingNowEnv); v != "" {
		t, err := time.Parse(TimestampLayout, v)
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}
