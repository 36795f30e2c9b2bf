package delay_test

import (
	"context"
	"fmt"
	"time"

	"github.com/erraggy/chatutil/delay"
)

func ExampleSleep() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	fmt.Println(delay.Sleep(ctx, 0))
	fmt.Println(delay.Sleep(ctx, time.Hour))
	// Output:
	// <nil>
	// context deadline exceeded
}
