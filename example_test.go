package symtab

import "fmt"

func Example() {
	table := NewOrdered[int, string]()
	table.Put(1, "128.112.136.12")
	table.Put(2, "128.112.136.11")
	table.Put(3, "128.112.128.15")
	fmt.Println("size:  ", table.Size())
	fmt.Println("height:", table.Height())

	table.Put(4, "209.052.165.60")
	fmt.Println("size:  ", table.Size())
	fmt.Println("height:", table.Height())

	for key := 5; key <= 10; key++ {
		table.Put(key, "209.052.165.60")
	}
	fmt.Println("size:  ", table.Size())
	fmt.Println("height:", table.Height())
	// Output:
	// size:   3
	// height: 0
	// size:   4
	// height: 1
	// size:   10
	// height: 2
}
