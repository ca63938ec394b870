package libevents_test

import (
	"fmt"

	"github.com/sonirico/libevents"
)

func ExampleEmitter() {
	e := libevents.NewEmitter[string, string]()

	e.On("greet", libevents.ListenerFunc(func(args ...string) {
		fmt.Println("hello", args[0])
	})).Once("greet", libevents.ListenerFunc(func(args ...string) {
		fmt.Println("first time only")
	}))

	e.Emit("greet", "gopher")
	e.Emit("greet", "again")
	fmt.Println(e.Emit("missing"))
	// Output:
	// hello gopher
	// first time only
	// hello again
	// false
}

type counter struct {
	total int
}

func publishTick(p libevents.Publisher[libevents.EventKey, int], key libevents.EventKey) bool {
	return p.Emit(key, 1, 2, 3)
}

func ExampleNewListener() {
	e := libevents.NewEmitter[libevents.EventKey, int]()
	tick := libevents.NewSymbol("tick")

	add := libevents.NewListener(func(recv any, args ...int) {
		c := recv.(*counter)
		for _, v := range args {
			c.total += v
		}
	})

	c := &counter{}
	e.On(tick, add, c)

	fmt.Println(publishTick(e, tick), c.total)
	fmt.Println(publishTick(e, libevents.Name("tick")), c.total)
	// Output:
	// true 6
	// false 6
}

func ExampleEmitter_PrependListener() {
	e := libevents.NewEmitter[string, any]()
	say := func(s string) *libevents.Listener[any] {
		return libevents.ListenerFunc(func(...any) { fmt.Println(s) })
	}

	e.On("foo", say("f1")).On("foo", say("f2")).PrependListener("foo", say("f3"))
	e.Emit("foo")
	// Output:
	// f3
	// f1
	// f2
}
