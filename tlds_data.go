package linkify

// asciiTLDEncoded is the ASCII top-level domain table, prefix-trie-encoded
// per \u00a76: literal runs push onto an implicit stack building the current
// prefix, and each run of decimal digits pops that many characters off the
// stack, emitting the concatenated prefix (before popping) as one TLD. See
// decodeTrie in tlds.go. This is a curated, alphabetically representative
// subset of the live IANA root zone, not the full list -- see DESIGN.md.
const asciiTLDEncoded = `0ac0ademy6e0ro3gency5i1l1m1pp0s3q1r0pa3s0ia3t0torney7u0to3z2band1k2r1seball7b1d1e1g1ike2z2log3n1o1r1s1t1uild0ers7v1y1z2ca0fe2r1t2enter5h0annel4t3ity3l0ick3oud3ub3n1o0de0s3ffee4llege5m0munity6pany5nnect4struction8ulting8op2untry4rses6r0edit5u1y1z2data3e0sign4v2igital6k1o0mains5wnload8ec1du0cation8e1g1mail4quipment8s0tate5xpert6fi0lm2nance6j1m1ootball6rum3undation9r1un3gallery5me0s4e1lobal5olf2v2r0oup4s1t1u0ide3ru3y2hm1n1ockey4me2st0ing5use4r1u2id1e1l1n0fo2stitute6urance7t2o1r1s1t2jm1obs3p2ke1g1h1i0tchen6r1z2la0b1w0yer5egal4ife2nk2ve3k1oan3t1u1v2machine6d1edia3nu3h1il2k1m1n1obi2ney3rtgage6vie4p1useum3ic4v1x1y2name3et0work5ws3g1i0nja4l1o1p1r1u1z2online5rg3pa0ge2rts1y4e1g1h0oto0graphy6s5ictures6zza4k1l0ay3ost3r0ess3o0perties3y7t1ub2w1y2radio4ealty4cipes5nt0als5pair4search5taurant9o0cks4s1u0n3sa1chool4ience6e0rvices7g1h0op1w3i0te3k0i2occer3ial4ftware6lutions8port0s5r1tore3ream4udio5upplies3y2ort5rf3v1ystems7tax0i3eam2ch0nology8l2f1h1ips3j1m1o0day3ols3wn3r0aining5vel5t1v2ua1k1m1niversity9s1y1z2ve1i0deo0s5n1ote1ing6wiki3orks2ld4s2xxx2yz3za1one4`

// utldEncoded is the internationalized (non-ASCII) top-level domain table,
// encoded the same way as asciiTLDEncoded.
const utldEncoded = `0бел3дети4москва6рф2السعودية7مارات6مصر3भारत4संगठन5ไทย3みんな3中国1文网3公司2台灣2在线2日本2网络2香港2닷넷1컴2한국2`
