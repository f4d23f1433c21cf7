package catalog

import "courtcredits/models"

// defaultCatalog reproduces the PBA venues. Weekday evenings start at 17:00.
const defaultCatalog = `
scheduleUnit: hours
locations:
  PBA Malaga:
    courtTypePolicy: none
    schedule:
      Monday:    {opening: 13, closing: 22}
      Tuesday:   {opening: 13, closing: 22}
      Wednesday: {opening: 13, closing: 22}
      Thursday:  {opening: 9, closing: 22}
      Friday:    {opening: 9, closing: 22}
      Saturday:  {opening: 9, closing: 22}
      Sunday:    {opening: 9, closing: 22}
    rates:
      "*":
        weekday:
          - {start: "00:00", end: "17:00", hourlyRate: "19.00"}
          - {start: "17:00", end: "24:00", hourlyRate: "29.00"}
        weekend:
          - {start: "00:00", end: "24:00", hourlyRate: "29.00"}
  PBA Canningvale:
    courtTypePolicy: required
    courtTypes: [Hebat Court, Super Court]
    defaultCourtType: Super Court
    schedule:
      Monday:    {opening: 10, closing: 22}
      Tuesday:   {opening: 10, closing: 22}
      Wednesday: {opening: 10, closing: 22}
      Thursday:  {opening: 10, closing: 22}
      Friday:    {opening: 10, closing: 22}
      Saturday:  {opening: 9, closing: 22}
      Sunday:    {opening: 9, closing: 20}
    rates:
      Hebat Court:
        weekday:
          - {start: "00:00", end: "17:00", hourlyRate: "16.00"}
          - {start: "17:00", end: "24:00", hourlyRate: "26.00"}
        weekend:
          - {start: "00:00", end: "24:00", hourlyRate: "26.00"}
      Super Court:
        weekday:
          - {start: "00:00", end: "17:00", hourlyRate: "19.00"}
          - {start: "17:00", end: "24:00", hourlyRate: "29.00"}
        weekend:
          - {start: "00:00", end: "24:00", hourlyRate: "29.00"}
`

// Default returns the built-in catalog.
func Default(fallback models.FallbackPolicy) *Snapshot {
	snap, err := Parse([]byte(defaultCatalog), fallback)
	if err != nil {
		panic("catalog: built-in catalog is invalid: " + err.Error())
	}
	return snap
}
