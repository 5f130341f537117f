/*
Package synced wraps the containers of module assoc for use by concurrent
goroutines.

Each wrapped container is protected by a single mutex. The wrappers do not
alter the semantics of the containers, they only serialize access. Iteration
works on a snapshot taken under the lock, so a loop body may call back into
the container:

    U := synced.NewUniqueSet[string, int]()
    U.Add("a", 1)
    for _, x := range U.All() {  // snapshot
        U.RemoveA(x.A())         // does not deadlock
    }

Compound operations which have to be atomic as a whole are run with Do:

    err := U.Do(func(u *dual.UniqueSet[string, int]) error {
        if !u.ContainsA("b") {
            return u.Add("b", 2)
        }
        return nil
    })

The function passed to Do must not call methods of the wrapper itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package synced
