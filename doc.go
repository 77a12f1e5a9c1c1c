// Package pixiv is a client for the Pixiv mobile app API.
//
// The client authenticates through the OAuth2 password or refresh-token
// grant and then exposes one method per remote endpoint: illustration
// search, detail, comments, rankings, recommendations, bookmarks and
// user listings. Paginated responses carry the API's next-page URL;
// callers extract the cursor with NextPageValue/NextPageInt (or the
// typed helpers on each result) and pass it back in a follow-up call.
//
//	c := &pixiv.Client{}
//	if err := c.Authenticate(ctx, refreshToken); err != nil {
//		log.Fatal(err)
//	}
//
//	res, err := c.SearchIllusts(ctx, pixiv.NewSearchIllustsParams().SetWord("風景"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, il := range res.Illusts {
//		fmt.Println(il.ID, il.Title)
//	}
//
// A Client is not safe for concurrent use: Login and Authenticate
// rewrite the stored token pair that every other method reads.
package pixiv
