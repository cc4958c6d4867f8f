package jalali_test

import (
	"context"
	"fmt"

	"github.com/go-faster/jalali"
	"github.com/go-faster/jalali/date"
)

func ExampleRegistry_Do() {
	reg, err := jalali.New(jalali.Options{})
	if err != nil {
		panic(err)
	}
	ctx := context.Background()

	res, err := reg.Do(ctx, jalali.Call{
		Func: "jalali_date_to_gregorian",
		Args: []jalali.Value{jalali.StrValue("1403-05-28")},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Value.Str())
	// Output: 2024-08-18
}

func ExampleRegistry_Evaluate() {
	reg, err := jalali.New(jalali.Options{})
	if err != nil {
		panic(err)
	}

	nowruz, _ := date.FromJalali(1403, 1, 1)
	yalda, _ := date.FromJalali(1403, 9, 30)

	before, err := reg.Evaluate("<", nowruz, yalda)
	if err != nil {
		panic(err)
	}
	fmt.Println(before)
	// Output: true
}
