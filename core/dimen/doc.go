/*
Package dimen implements typographic dimensions and units.

Dimensions are kept in scaled big points, with a big point being 1/72 inch.
The canvas of a space ranger grid is measured in big points, which makes
dimensions the bridge between user input ("72pt", "1in") and grid metrics,
and between grid metrics and raster resolutions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dimen
