// Package stream finds weekly pitcher streaming options: probable starters
// who are unrostered in the fantasy league and face a weak or strikeout
// prone offense given their throwing hand.
package stream
