// Package timezones provides deterministic IANA timezone data and search
// helpers for time-zone select inputs. The backing data is loaded from the
// embedded list under data/iana_timezones.txt; callers can substitute their
// own list via LoadZones.
package timezones
