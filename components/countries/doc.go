// Package countries provides the ISO 3166-1 country table backing country
// select inputs. The embedded data under data/iso3166.txt is tab-separated
// "code<TAB>name" pairs; callers can substitute their own table via Load.
//
// Country inputs refuse to render without this (or an equivalent) source
// configured, so pulling in this package is what "installs" country support.
package countries
