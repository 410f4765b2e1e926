// Package sm2 implements the SuperMemo-2 spaced repetition scheduling algorithm.
//
// sm2 provides the pure state transition at the heart of SM-2: given an
// item's memory state and a 0–5 recall grade, it computes the updated
// easiness factor, repetition count, and review interval. Storage, calendar
// scheduling, and user interaction are left to the caller.
//
// Basic usage:
//
//	item := sm2.NewItem()
//	item, err := item.Review(sm2.Hesitant)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(item.Interval) // days until next review
//
// Every operation returns a new Item; the input is never mutated.
package sm2
