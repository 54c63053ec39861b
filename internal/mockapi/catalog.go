// ABOUTME: Seeded film catalogue served by the test backend
// ABOUTME: Holds popular movie records and their projection to search results

package mockapi

import "github.com/nsttdn/Film-fit/internal/client"

type seedFilm struct {
	tmdbID     int64
	title      string
	released   string
	vote       float64
	votes      int
	popularity float64
	runtime    int
	director   string
	language   string
	overview   string
}

var seedFilms = []seedFilm{
	{238, "The Godfather", "1972-03-14", 8.7, 19500, 98.4, 175, "Francis Ford Coppola", "en", "The aging patriarch of an organized crime dynasty transfers control to his reluctant son."},
	{278, "The Shawshank Redemption", "1994-09-23", 8.7, 26000, 120.1, 142, "Frank Darabont", "en", "Two imprisoned men bond over a number of years."},
	{155, "The Dark Knight", "2008-07-16", 8.5, 31000, 110.7, 152, "Christopher Nolan", "en", "Batman raises the stakes in his war on crime."},
	{27205, "Inception", "2010-07-15", 8.4, 35000, 105.2, 148, "Christopher Nolan", "en", "A thief who steals corporate secrets through dream-sharing technology."},
	{157336, "Interstellar", "2014-11-05", 8.4, 33000, 140.3, 169, "Christopher Nolan", "en", "A team of explorers travel through a wormhole in space."},
	{680, "Pulp Fiction", "1994-09-10", 8.5, 27000, 85.9, 154, "Quentin Tarantino", "en", "The lives of two mob hitmen, a boxer and a pair of diner bandits intertwine."},
	{13, "Forrest Gump", "1994-06-23", 8.5, 26500, 80.6, 142, "Robert Zemeckis", "en", "A man with a low IQ witnesses defining historical events."},
	{550, "Fight Club", "1999-10-15", 8.4, 28000, 77.3, 139, "David Fincher", "en", "An insomniac office worker forms an underground fight club."},
	{603, "The Matrix", "1999-03-30", 8.2, 24000, 92.8, 136, "Lana Wachowski", "en", "A hacker learns the true nature of his reality."},
	{129, "Spirited Away", "2001-07-20", 8.5, 16000, 88.0, 125, "Hayao Miyazaki", "ja", "A girl wanders into a world ruled by gods and witches."},
	{496243, "Parasite", "2019-05-30", 8.5, 17500, 95.1, 133, "Bong Joon-ho", "ko", "A poor family schemes to become employed by a wealthy family."},
	{424, "Schindler's List", "1993-12-15", 8.6, 15000, 60.2, 195, "Steven Spielberg", "en", "A businessman saves the lives of more than a thousand refugees."},
	{122, "The Lord of the Rings: The Return of the King", "2003-12-17", 8.5, 23000, 99.6, 201, "Peter Jackson", "en", "The final confrontation between the forces of good and evil."},
	{120, "The Lord of the Rings: The Fellowship of the Ring", "2001-12-18", 8.4, 24500, 97.2, 179, "Peter Jackson", "en", "A young hobbit sets out to destroy a powerful ring."},
	{769, "GoodFellas", "1990-09-12", 8.5, 12500, 55.4, 145, "Martin Scorsese", "en", "The story of Henry Hill and his life in the mob."},
	{389, "12 Angry Men", "1957-04-10", 8.5, 8500, 40.7, 97, "Sidney Lumet", "en", "A jury holdout attempts to prevent a miscarriage of justice."},
	{497, "The Green Mile", "1999-12-10", 8.5, 17000, 70.9, 189, "Frank Darabont", "en", "A death row guard discovers an inmate's gift."},
	{244786, "Whiplash", "2014-10-10", 8.4, 15000, 66.1, 107, "Damien Chazelle", "en", "A promising young drummer enrolls at a cut-throat conservatory."},
	{372058, "Your Name.", "2016-08-26", 8.5, 11000, 74.5, 106, "Makoto Shinkai", "ja", "Two strangers find themselves linked in a bizarre way."},
	{637, "Life Is Beautiful", "1997-12-20", 8.5, 13000, 45.3, 116, "Roberto Benigni", "it", "A father uses humour to shield his son from the horrors of a camp."},
	{11216, "Cinema Paradiso", "1988-11-17", 8.4, 4300, 30.6, 124, "Giuseppe Tornatore", "it", "A filmmaker recalls his childhood in a village cinema."},
	{539, "Psycho", "1960-06-22", 8.4, 9800, 35.8, 109, "Alfred Hitchcock", "en", "A secretary embezzles money and checks into a remote motel."},
	{1891, "The Empire Strikes Back", "1980-05-20", 8.4, 16500, 62.4, 124, "Irvin Kershner", "en", "The Rebels scatter after the Empire attacks their base."},
	{346, "Seven Samurai", "1954-04-26", 8.5, 3600, 28.2, 207, "Akira Kurosawa", "ja", "A village hires seven samurai to defend against bandits."},
}

// popularLimit is the number of records served by /films/popular
const popularLimit = 20

// buildCatalog assigns server ids in seed order
func buildCatalog() []client.PopularMovie {
	movies := make([]client.PopularMovie, 0, len(seedFilms))
	for i, f := range seedFilms {
		movies = append(movies, client.PopularMovie{
			ID:               int64(i + 1),
			TmdbID:           f.tmdbID,
			Title:            f.title,
			VoteAverage:      f.vote,
			VoteCount:        f.votes,
			Status:           "Released",
			ReleaseDate:      f.released,
			Runtime:          f.runtime,
			OriginalTitle:    f.title,
			Overview:         f.overview,
			Popularity:       f.popularity,
			PosterPath:       posterPath(f.tmdbID),
			OriginalLanguage: f.language,
			Keywords:         []string{},
		})
	}
	return movies
}

func posterPath(tmdbID int64) string {
	return "/posters/" + itoa(tmdbID) + ".jpg"
}

// toFilm projects a catalogue record to the search result shape
func toFilm(m client.PopularMovie, director string) client.Film {
	f := client.Film{
		ID:          m.ID,
		Title:       m.Title,
		VoteAverage: m.VoteAverage,
		Overview:    m.Overview,
		ReleaseDate: m.ReleaseDate,
	}
	if m.PosterPath != "" {
		p := m.PosterPath
		f.PosterPath = &p
	}
	if director != "" {
		d := director
		f.Director = &d
	}
	return f
}
