/*
Package symtab offers ordered symbol tables: associative arrays which keep
their keys sorted.

Symbol tables

A symbol table associates a value with every key stored in it. Hash-based
tables do this with great lookup speed, but give up any notion of key order.
Tables in this package instead organize their keys in a balanced multiway
tree (a B-tree), keeping every operation at logarithmic depth as the table
grows, without global rebalancing passes.

From Bayer & McCreight, 1972:

Organization and Maintenance of Large Ordered Indexes

The index is organized in pages of fixed size capable of holding up to 2k
keys, but pages need only be partially filled. […] The scheme guarantees
that the storage utilization is at least 50 percent.

_________________________________________________________________________

Tables support put, get, contains, size, height, and is-empty; put grows the
tree purely through local node splits which propagate toward the root. There
is no deletion and no range iteration. All operations assume sequential
access: a table is owned by one caller context at a time, and concurrent use
requires external synchronization.

	Operation     |   Table         |  Go map
	--------------+-----------------+--------
	Get           |   O(log n)      |   O(1)
	Put           |   O(log n)      |   O(1)
	Ordered keys  |   yes           |   no

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package symtab

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
