package collections_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/collections"
	"github.com/hupe1980/collections/resource"
)

type Point struct {
	X, Y int
}

func Example() {
	list, err := collections.New[Point](1)
	if err != nil {
		panic(err)
	}
	defer list.Destroy()

	for i := range 4 {
		_ = list.Add(Point{X: i, Y: i})
	}

	// Get returns a view into the list; writes through it are kept.
	for i := range list.Len() {
		p, _ := list.Get(i)
		p.Y *= 2
	}

	for _, p := range list.All() {
		fmt.Println(p)
	}
	// Output:
	// {0 0}
	// {1 2}
	// {2 4}
	// {3 6}
}

func ExampleArrayList_Insert() {
	list, _ := collections.New[string](2)
	_ = list.Add("a")
	_ = list.Add("c")
	_ = list.Insert(1, "b")

	arr, _ := list.Array()
	fmt.Println(arr)

	err := list.Insert(5, "z")
	fmt.Println(errors.Is(err, collections.ErrIndexOutOfRange))
	// Output:
	// [a b c]
	// true
}

func ExampleEqList_RemoveAll() {
	list, _ := collections.NewEqList(collections.Equal[int](), 0)
	for _, v := range []int{1, 2, 1, 3, 1} {
		_ = list.Add(v)
	}

	fmt.Println(list.FirstIndexOf(1), list.LastIndexOf(1), list.Count(1))

	removed, _ := list.RemoveAll(1)
	arr, _ := list.Array()
	fmt.Println(removed, arr)
	// Output:
	// 0 4 3
	// true [2 3]
}

func ExampleWithResourceController() {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 32})

	list, _ := collections.New[int64](4, collections.WithResourceController(rc))
	for i := range int64(5) {
		if err := list.Add(i); err != nil {
			fmt.Println(errors.Is(err, collections.ErrAllocationFailure), list.Len())
		}
	}
	// Output:
	// true 4
}
