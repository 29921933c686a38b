package main

import (
	log "github.com/sirupsen/logrus"

	"typedmap/typedmap"
)

func main() {
	years := []typedmap.Entry[string, int]{
		{Key: "python", Value: 1991},
		{Key: "go", Value: 2009},
		{Key: "go", Value: 2012},
	}
	if _, err := typedmap.FromEntries(typedmap.Strict, years); err != nil {
		log.WithError(err).Info("strict construction rejected the literal")
	}
	langs, err := typedmap.FromEntries(typedmap.Permissive, years)
	if err != nil {
		log.Fatal(err)
	}
	year, found := langs.Get("go")
	log.WithFields(log.Fields{"year": year, "found": found}).Info("permissive construction, last write wins")

	counts := typedmap.NewHashMap[string, int]()
	counts.Set("stored-zero", 0)
	v, found := counts.Get("stored-zero")
	log.WithFields(log.Fields{"value": v, "found": found}).Info("stored zero value is still found")
	v, found = counts.Get("never-set")
	log.WithFields(log.Fields{"value": v, "found": found}).Info("missing key reports absent, not zero")

	villains := typedmap.NewHashMap[string, []string]()
	h := villains.GetOrInsertDefault("Batman")
	*h = append(*h, "The Joker", "Two-Face")
	rogues, _ := villains.Get("Batman")
	log.WithField("rogues", rogues).Info("incremental mutation through the value handle")

	ordered := typedmap.NewLinkedMap[string, string]()
	ordered.Set("first", "a")
	ordered.Set("second", "b")
	ordered.Set("third", "c")
	ordered.Set("first", "A")
	log.WithField("keys", ordered.Keys()).Info("insertion order survives overwrite")
}
