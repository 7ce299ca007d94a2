// Package tlg implements the TLG5 and TLG6 lossless image codecs used by
// the TLG family of raster image formats: a TLG5 decoder and encoder,
// and a TLG6 decoder, each mapping between a TLG byte stream and a raw
// BGRA pixel buffer. The package also registers itself with the
// standard image package so image.Decode recognizes both variants.
package tlg
