/*
Package buffer provides a small reference-counted buffer primitive:
a fixed-capacity slot array with an atomic share counter and a uniqueness
query.

The package exists to serve copy-on-write clients. A client holding one
reference may ask whether it is the sole owner (Unique) and, if so, mutate
the slots in place; otherwise it must copy the contents into a fresh buffer
before writing. The counter itself is race-free, so the uniqueness answer
is stable for any caller that holds a reference of its own.

The buffer does not track which slots hold live content. Clients keep an
occupancy count of their own and must never read slots beyond it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package buffer
