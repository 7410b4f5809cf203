// Package nel provides NonEmptyList[T]: a head plus a possibly empty
// flist.FList tail. Constructors reject empty or nil sources with
// adt.ErrIllegalArgument, so a NonEmptyList obtained from them always holds
// at least one element.
//
// either.ZipOrAccumulateN reports its failures as a NonEmptyList.
package nel
